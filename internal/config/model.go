package config

import "github.com/born-ml/scalar/internal/data"

// Optimizer kinds.
const (
	KindSGD  = "sgd"
	KindAdam = "adam"
)

// Run is a fully resolved training run.
type Run struct {
	Seed      int64
	Epochs    int
	Inputs    int
	Layers    []int
	Optimizer Optimizer
	Samples   []data.Sample
}

// Optimizer holds the optimizer block. Zero numeric fields are left for the
// optimizer to default.
type Optimizer struct {
	Kind         string
	LearningRate float64
	Momentum     float64
	Beta1        float64
	Beta2        float64
	Eps          float64
}

// hclFile is the decoding target for a run file.
type hclFile struct {
	Seed      *int64        `hcl:"seed,optional"`
	Epochs    *int          `hcl:"epochs,optional"`
	Model     hclModel      `hcl:"model,block"`
	Optimizer *hclOptimizer `hcl:"optimizer,block"`
	Samples   []hclSample   `hcl:"sample,block"`
}

type hclModel struct {
	Inputs int   `hcl:"inputs"`
	Layers []int `hcl:"layers"`
}

type hclOptimizer struct {
	Kind         string  `hcl:"kind,optional"`
	LearningRate float64 `hcl:"learning_rate,optional"`
	Momentum     float64 `hcl:"momentum,optional"`
	Beta1        float64 `hcl:"beta1,optional"`
	Beta2        float64 `hcl:"beta2,optional"`
	Eps          float64 `hcl:"eps,optional"`
}

type hclSample struct {
	Inputs []float64 `hcl:"inputs"`
	Target []float64 `hcl:"target"`
}
