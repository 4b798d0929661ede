package consts

const (
	Planck       = 6.626e-34 // Planck constant (J.s)
	LightSpeed   = 3e8       // Speed of light (m/s)
	ElectronVolt = 1.602e-19 // One electronvolt (J)
	Micro        = 1e-6      // Meters per micrometer
)
