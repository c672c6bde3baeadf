package skeleton

// Attr is the per-archetype constant geometry (anchor offsets and body
// dimensions). It is owned by the character-rig collaborator and only read
// here. Pairs are (y, z) unless noted; triples are (x, y, z).
type Attr struct {
	Head       [2]float64
	Jaw        [2]float64
	UpperTorso [2]float64
	LowerTorso [2]float64
	Tail       [2]float64
	Shoulder   [3]float64
	Hand       [3]float64
	Leg        [3]float64
	Foot       [3]float64
	// Grip is (grip length, grip lateral offset).
	Grip   [2]float64
	Height float64
	// Tempo scales the locomotion cadence.
	Tempo  float64
	Scaler float64
}
