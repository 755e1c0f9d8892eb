package ports

// Confirmer gates the execution of one batch behind an operator decision.
type Confirmer interface {
	// Confirm reads a yes/no response from the interactive control device.
	// Only an affirmative response returns true; a negative or unparseable
	// response skips the batch. An error means the device is unusable and
	// ends the run.
	Confirm() (bool, error)
}
