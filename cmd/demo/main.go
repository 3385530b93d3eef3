package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"
	"pet-care-planner/internal/fixtures"
	"pet-care-planner/internal/platform/logger"
)

func main() {
	household := flag.String("household", "", "archivo YAML con el hogar (opcional)")
	flag.Parse()

	// Solo conflictos y errores van al log (stderr); la agenda va a stdout.
	log := logger.New(logger.Options{Level: logger.Warn, Format: logger.FormatText, App: "pet-care-demo", Writer: os.Stderr})

	now := time.Now()

	var (
		o   *owners.Owner
		err error
	)
	if *household != "" {
		var h fixtures.Household
		h, err = fixtures.LoadFile(*household, now)
		o = h.Owner
	} else {
		o, err = sampleHousehold(now)
	}
	if err != nil {
		log.Error("household setup failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	s := scheduling.New(o, scheduling.WithReporter(scheduling.ReporterFunc(func(c scheduling.Conflict) {
		log.Warn("task conflict detected", map[string]any{"pet": c.PetName, "task": c.Task.Describe(), "other_task": c.Other.Describe()})
	})))

	fmt.Println("===== Today's Schedule =====")
	for _, line := range scheduling.Lines(s.GenerateDailySchedule()) {
		fmt.Println(line)
	}
}

func sampleHousehold(now time.Time) (*owners.Owner, error) {
	o := owners.New(1, "Hamid", "hamid@email.com")
	buddy := pets.New(101, "Buddy", pets.SpeciesDog, "Golden Retriever", "Antibiotic")
	mittens := pets.New(102, "Mittens", pets.SpeciesCat, "Tabby", "Vitamin")
	o.AddPet(buddy)
	o.AddPet(mittens)

	walk, err := tasks.NewWalk(1, now.Add(time.Hour), tasks.PriorityMedium, tasks.RecurrenceNone, 30)
	if err != nil {
		return nil, err
	}
	feed, err := tasks.NewFeed(2, now.Add(2*time.Hour), tasks.PriorityLow, tasks.RecurrenceNone, "Dry Kibble", "1 cup")
	if err != nil {
		return nil, err
	}
	med, err := tasks.NewMedicine(3, now.Add(3*time.Hour), tasks.PriorityHigh, tasks.RecurrenceNone, "PetMed", "5ml")
	if err != nil {
		return nil, err
	}

	buddy.AddTask(walk)
	buddy.AddTask(feed)
	mittens.AddTask(med)
	return o, nil
}
