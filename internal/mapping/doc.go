// Package mapping defines typelist.yaml, the file that tells typelist-gen
// which records to derive canonical lists for and which conversions to emit.
//
// # Schema Overview
//
//	version: "1"
//	packages:
//	  - path: ./examples/vectors   # relative to the config file
//	    output: typelist_gen.go    # default
//	    records:
//	      - Vec3                   # named fields
//	      - type: TuplePoint
//	        positional: true       # fields matched by position and type
//	    conversions:
//	      - source: Vec3
//	        target: Point          # emits func Vec3ToPoint(Vec3) Point
//	      - source: Vec3Ex
//	        target: PointEx
//	        deep: true             # recurse into nested records and slices
//	        name: Flatten          # overrides the function name
//
// Records used by a conversion are derived even when not listed; listing
// them is only needed for records without conversions or to mark them
// positional.
//
// The JSON schema of the file is published by "typelist-gen schema".
package mapping
