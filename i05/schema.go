// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i05

// Record paths of the I05-HR Nexus schema.
const (
	InstrumentName = "entry1/instrument/name"
	EntryID        = "entry1/entry_identifier"

	// ScanGroup lists the fields that were driven during the scan.
	ScanGroup = "entry1/analyser"

	Data     = "entry1/instrument/analyser/data"
	Angles   = "entry1/instrument/analyser/angles"
	Energies = "entry1/instrument/analyser/energies"

	PassEnergy    = "entry1/instrument/analyser/pass_energy"
	Iterations    = "entry1/instrument/analyser/number_of_iterations"
	Cycles        = "entry1/instrument/analyser/number_of_cycles"
	FrameTime     = "entry1/instrument/analyser/time_for_frames"
	LensMode      = "entry1/instrument/analyser/lens_mode"
	SlitSetting   = "entry1/instrument/analyser/entrance_slit_setting"
	SlitSize      = "entry1/instrument/analyser/entrance_slit_size"
	SlitShape     = "entry1/instrument/analyser/entrance_slit_shape"
	PhotonEnergy  = "entry1/instrument/monochromator/energy"
	ExitSlitSize  = "entry1/instrument/monochromator/exit_slit_size"
	Polarisation  = "entry1/instrument/insertion_device/beam/final_polarisation_label"
	ScanTemp      = "entry1/instrument/sample/temperature"
	SampleTemp    = "entry1/sample/temperature"
	CryostatTemp  = "entry1/sample/cryostat_temperature"
	Manipulator   = "entry1/instrument/manipulator"
	ManipulatorX  = Manipulator + "/" + FieldX
	ManipulatorY  = Manipulator + "/" + FieldY
	ManipulatorZ  = Manipulator + "/" + FieldZ
	ManipulatorPl = Manipulator + "/" + FieldPolar
	ManipulatorFc = Manipulator + "/" + FieldFocus
	ManipulatorTl = Manipulator + "/satilt"
	ManipulatorAz = Manipulator + "/saazimuth"
)

// Names of the scan fields in [ScanGroup] that determine the [ScanType].
const (
	FieldPhotonEnergy = "energy"
	FieldPolar        = "sapolar"
	FieldFocus        = "salong"
	FieldX            = "sax"
	FieldY            = "say"
	FieldZ            = "saz"
	FieldTemperature  = "temperature"
)

// Instrument is the value of [InstrumentName] for I05 files.
const Instrument = "i05"

// Beamline is the beamline attribute value.
const Beamline = "Diamond I05-HR"

// Axis names and units of loaded arrays.
const (
	AxisAngle       = "angle"
	AxisEnergy      = "energy"
	AxisPolar       = "polar"
	AxisFocus       = "focus"
	AxisPos         = "pos"
	AxisPos1        = "pos1"
	AxisPos2        = "pos2"
	AxisPos3        = "pos3"
	AxisTemperature = "temperature"

	UnitsDeg    = "deg"
	UnitsMM     = "mm"
	UnitsKelvin = "K"
	UnitsEV     = "eV"
)
