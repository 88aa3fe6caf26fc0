package document

// DefaultLibrary returns the sample chapters the library is seeded with
// on first start, so the app is usable before any upload.
func DefaultLibrary() []*Document {
	return []*Document{
		{
			ID:      "ncert-physics-xi-01",
			Name:    "Ch 1: Physical World.pdf",
			Content: "This chapter introduces the scope and excitement of physics. It covers fundamental forces in nature and the nature of physical laws.",
		},
		{
			ID:      "ncert-physics-xi-02",
			Name:    "Ch 2: Units and Measurement.pdf",
			Content: "This chapter deals with the need for measurement, systems of units, SI units, significant figures, and dimensions of physical quantities.",
		},
		{
			ID:      "ncert-physics-xi-03",
			Name:    "Ch 3: Motion in a Straight Line.pdf",
			Content: "This chapter covers concepts of kinematics such as position, path length, displacement, average velocity, instantaneous velocity, acceleration, and kinematic equations for uniformly accelerated motion.",
		},
	}
}
