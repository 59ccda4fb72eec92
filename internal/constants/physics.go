package constants

import "math"

// Physical constants, in the order the constants panel lists them.
var physicsEntries = []Entry{
	{Symbol: "h", Value: 6.63e-34, Description: "Planck constant"},
	{Symbol: "ℏ", Aliases: []string{"hbar"}, Value: 1.054571817e-34, Description: "Reduced Planck"},
	{Symbol: "c", Value: 300000000, Description: "Speed of light"},
	{Symbol: "e", Value: 1.602176634e-19, Description: "Elementary charge"},
	{Symbol: "mₑ", Aliases: []string{"me"}, Value: 9.1e-31, Description: "Electron mass"},
	{Symbol: "mₚ", Aliases: []string{"mp"}, Value: 1.67e-27, Description: "Proton mass"},
	{Symbol: "mₙ", Aliases: []string{"mn"}, Value: 1.675e-27, Description: "Neutron mass"},
	{Symbol: "u", Value: 1.66e-27, Description: "Atomic mass unit"},
	{Symbol: "α", Aliases: []string{"alpha"}, Value: 0.007297352566, Description: "Fine structure"},
	{Symbol: "ε₀", Aliases: []string{"eps0"}, Value: 8.854187817e-12, Description: "Permittivity"},
	{Symbol: "μ₀", Aliases: []string{"mu0"}, Value: 1.25663706e-6, Description: "Permeability"},
	{Symbol: "G", Value: 6.67430e-11, Description: "Gravitational"},
	{Symbol: "kB", Value: 1.380649e-23, Description: "Boltzmann"},
	{Symbol: "NA", Value: 6.02214076e23, Description: "Avogadro"},
	{Symbol: "R∞", Aliases: []string{"Rinf"}, Value: 1.097e7, Description: "Rydberg"},
	{Symbol: "π", Aliases: []string{"pi"}, Value: math.Pi, Description: "Pi"},
	{Symbol: "euler", Value: math.E, Description: "Euler's number"},
}

// Unit scale factors to SI base units.
var unitEntries = []Entry{
	{Symbol: "eV", Value: 1.602176634e-19, Description: "Electron volt"},
	{Symbol: "keV", Value: 1.602176634e-16, Description: "Kilo eV"},
	{Symbol: "MeV", Value: 1.602176634e-13, Description: "Mega eV"},
	{Symbol: "nm", Value: 1e-9, Description: "Nanometer"},
	{Symbol: "pm", Value: 1e-12, Description: "Picometer"},
	{Symbol: "fm", Value: 1e-15, Description: "Femtometer"},
	{Symbol: "Å", Aliases: []string{"A"}, Value: 1e-10, Description: "Angstrom"},
	{Symbol: "MHz", Value: 1e6, Description: "Megahertz"},
	{Symbol: "GHz", Value: 1e9, Description: "Gigahertz"},
	{Symbol: "THz", Value: 1e12, Description: "Terahertz"},
}

// Physics returns the table of physical constants.
func Physics() (*Table, error) {
	return NewTable(KindConstant, physicsEntries...)
}

// Units returns the table of unit scale factors.
func Units() (*Table, error) {
	return NewTable(KindUnit, unitEntries...)
}

// Default returns the merged constants and units namespace used by the
// evaluator.
func Default() (*Table, error) {
	phys, err := Physics()
	if err != nil {
		return nil, err
	}
	units, err := Units()
	if err != nil {
		return nil, err
	}
	return Merge(phys, units)
}
