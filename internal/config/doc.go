// Package config loads training-run definitions written in HCL.
//
// A run file describes the model shape, the optimizer, the number of epochs
// and the samples to fit:
//
//	seed   = 1337
//	epochs = 50
//
//	model {
//	  inputs = 3
//	  layers = [4, 4, 1]
//	}
//
//	optimizer {
//	  kind          = "sgd"
//	  learning_rate = var.lr
//	}
//
//	sample {
//	  inputs = [2.0, 3.0, -1.0]
//	  target = [1.0]
//	}
//
// Expressions may reference var.<name>; values come from the command line
// (-var lr=0.05). When no sample block is present and the model has three
// inputs and one output, the built-in demo set is used.
package config
