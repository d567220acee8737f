// Package harness checks kernel exports against expectations stored in YAML
// suites, the way an external engine's test runner compares its own results.
//
// A suite file looks like:
//
//	name: rust-basic
//	cases:
//	  - name: zeros wrap
//	    export: x2_plus_y2_minus_13
//	    args: ["0", "0"]
//	    want: "244"
//	  - name: f32 against f64 reference
//	    export: loopedArithmeticF32Benchmark
//	    args: ["10", "10.0"]
//	    want: "384871.9982403051"
//	    tolerance: 1e-6
//
// Integer results must match exactly. Float results must match bit for bit
// when tolerance is zero; otherwise the relative error must not exceed it.
// NaN matches NaN.
package harness
