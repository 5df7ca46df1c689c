package domain

// SampleProducts returns the built-in demo catalog used by the seed
// endpoint. Every entry carries a distinct (name, model) pair; the seed
// routine keys its duplicate check on those two fields.
func SampleProducts() []Product {
	return []Product{
		{
			Name:             "Cryogenic Globe Valve",
			Category:         "Cryogenic Valves",
			ShortDescription: "Extended-bonnet globe valve for LNG service down to -196°C",
			Specs: map[string]string{
				"size":           "6 in",
				"pressure_class": "Class 600",
				"body_material":  "CF8M stainless",
			},
			Brand:        "ThermoFlux",
			Model:        "CGV-150",
			ImageURL:     "https://cdn.ogxsupply.com/products/cgv-150.jpg",
			DatasheetURL: "https://cdn.ogxsupply.com/datasheets/cgv-150.pdf",
			InStock:      true,
		},
		{
			Name:             "Triplex Mud Pump",
			Category:         "Pumps",
			ShortDescription: "7500 psi triplex pump for onshore drilling rigs",
			Specs: map[string]string{
				"max_pressure": "7500 psi",
				"power":        "1600 hp",
				"stroke":       "12 in",
			},
			Brand:    "DrillMax",
			Model:    "TMP-7500",
			ImageURL: "https://cdn.ogxsupply.com/products/tmp-7500.jpg",
			InStock:  true,
		},
		{
			Name:             "Downhole Pressure Sensor",
			Category:         "Drilling Sensors",
			ShortDescription: "Quartz gauge rated to 20,000 psi and 200°C",
			Specs: map[string]string{
				"range":       "20000 psi",
				"accuracy":    "0.02% FS",
				"temperature": "200°C",
			},
			Brand:        "SensiDril",
			Model:        "DPS-20K",
			DatasheetURL: "https://cdn.ogxsupply.com/datasheets/dps-20k.pdf",
			InStock:      true,
		},
		{
			Name:             "Subsea Ball Valve",
			Category:         "Subsea Equipment",
			ShortDescription: "ROV-operable trunnion ball valve for 3000 m water depth",
			Specs: map[string]string{
				"size":        "10 in",
				"rating":      "API 6DSS",
				"water_depth": "3000 m",
			},
			Brand:   "DeepSeal",
			Model:   "SBV-10",
			InStock: true,
		},
		{
			Name:             "Centrifugal Transfer Pump",
			Category:         "Pumps",
			ShortDescription: "API 610 OH2 pump for crude and refined product transfer",
			Specs: map[string]string{
				"flow":     "300 m³/h",
				"head":     "120 m",
				"standard": "API 610 OH2",
			},
			Brand:    "FluidCore",
			Model:    "CTP-300",
			ImageURL: "https://cdn.ogxsupply.com/products/ctp-300.jpg",
			InStock:  true,
		},
		{
			Name:             "Wellhead Temperature Transmitter",
			Category:         "Instrumentation",
			ShortDescription: "Dual-output RTD transmitter with HART, Zone 1 certified",
			Specs: map[string]string{
				"output":        "4-20 mA / HART",
				"certification": "ATEX Zone 1",
			},
			Brand:   "SensiDril",
			Model:   "WTT-450",
			InStock: true,
		},
	}
}
