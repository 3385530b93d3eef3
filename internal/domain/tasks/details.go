package tasks

import "time"

// Walk ocupa a la mascota durante Duration.
type Walk struct {
	Duration time.Duration
}

type Feed struct {
	FoodType    string // "Dry Kibble"
	PortionSize string // texto libre: "1 cup"
}

type Medicine struct {
	MedicationName string
	Dosage         string // "5ml", "1 tablet", etc.
}
