package domain

import "fmt"

// Position is the center of an identified object, in percent of the image size.
// Values outside [0,100] are passed through as reported; clients clamp
// them for rendering.
type Position struct {
	X float64
	Y float64
}

// IdentifiedObject is one object a recognition call found in an image.
// ID is only unique within the response that produced it.
type IdentifiedObject struct {
	ID          string
	Name        string
	Translation string
	Position    Position
	Language    Language
}

// ObjectID builds the response-scoped identifier for the object at index i.
func ObjectID(i int) string {
	return fmt.Sprintf("obj-%d", i)
}
