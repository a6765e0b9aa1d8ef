// Package description holds the material property model consumed by the
// generator, its YAML and HCL loaders, and structural validation.
//
// A description is produced once by a loader and never mutated afterwards;
// the generator only reads it.
//
// # YAML Schema
//
//	material: UO2
//	law: YoungModulus
//	use_quantities: true
//	output:
//	  name: E
//	  type: stress
//	  physical_bounds: {lower: 0}
//	inputs:
//	  - name: T
//	    type: temperature
//	    external_name: Temperature
//	    bounds: {lower: 0, upper: 3000}
//	parameters:
//	  - {name: E0, type: stress, default: 2.2e11}
//	includes: |
//	  #include <cmath>
//	body: |
//	  E = E0 * (1 - T / temperature(3000));
//	file:
//	  author: Jane Doe
//	  date: 2024-01-01
//	  source: UO2_YoungModulus.mfront
//
// # HCL Schema
//
// The same description can be written in HCL, with variables as labelled
// blocks:
//
//	material = "UO2"
//	law      = "YoungModulus"
//	output "E" {
//	  type = "stress"
//	  physical_bounds { lower = 0 }
//	}
//	input "T" {
//	  type   = "temperature"
//	  bounds {
//	    lower = 0
//	    upper = 3000
//	  }
//	}
//	parameter "E0" {
//	  type    = "stress"
//	  default = 2.2e11
//	}
//	body = <<EOT
//	E = E0 * (1 - T / temperature(3000));
//	EOT
package description
