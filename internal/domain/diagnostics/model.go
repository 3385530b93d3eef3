package diagnostics

import "time"

// Record es un conflicto detectado, guardado como rastro de diagnóstico.
// No es estado de la sesión: borrar el journal no cambia la agenda.
type Record struct {
	ID string

	PetID   int
	PetName string

	TaskID          int
	TaskDescription string

	OtherTaskID      int
	OtherDescription string

	Message    string
	DetectedAt time.Time
}
