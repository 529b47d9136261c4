package dataset

import (
	"context"
	"math/rand"

	"github.com/go-sif/tally"
	terrors "github.com/go-sif/tally/errors"
)

// GenerateConf configures the generation of synthetic Records, and is not modified by
// generation. The zero value generates untagged values in [1, 100] from seed 1.
type GenerateConf struct {
	Seed          int64 // Seed for the random source. Defaults to 1.
	MinValue      int32 // Smallest generated value. Defaults to 1 when both MinValue and MaxValue are 0.
	MaxValue      int32 // Largest generated value. Defaults to 100 when both MinValue and MaxValue are 0.
	ExplicitRange bool  // Iff true, MinValue and MaxValue are used as given, so {0, 0} generates zeros
	Tagged        bool  // Iff true, every Record receives a random Category and Sector
	MaxRecords    int   // Refuse to allocate more than this many Records. Defaults to 10^7; negative means unbounded.
}

// withDefaults returns a copy of conf with defaults filled in, leaving the caller's value alone
func withDefaults(conf *GenerateConf) *GenerateConf {
	if conf == nil {
		return withDefaults(&GenerateConf{})
	}
	cpy := *conf
	ensureDefaultGenerateConfValues(&cpy)
	return &cpy
}

func ensureDefaultGenerateConfValues(conf *GenerateConf) {
	if conf.Seed == 0 {
		conf.Seed = 1
	}
	if conf.MinValue == 0 && conf.MaxValue == 0 && !conf.ExplicitRange {
		conf.MinValue = 1
		conf.MaxValue = 100
	}
	if conf.MaxValue < conf.MinValue {
		conf.MaxValue = conf.MinValue
	}
	if conf.MaxRecords == 0 {
		conf.MaxRecords = 10000000
	}
}

// GenerateRecords produces n random Records. Returns an AllocationFailureError if storage
// for n Records cannot be obtained.
func GenerateRecords(n int, conf *GenerateConf) ([]tally.Record, error) {
	conf = withDefaults(conf)
	records, err := allocRecords(n, conf.MaxRecords)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(conf.Seed))
	span := int64(conf.MaxValue) - int64(conf.MinValue) + 1
	for i := range records {
		records[i].Value = conf.MinValue + int32(rng.Int63n(span))
		if conf.Tagged {
			records[i].Category = tally.Category(1 + rng.Intn(tally.NumCategories))
			records[i].Sector = tally.Sector(1 + rng.Intn(int(tally.MaxSector)))
		}
	}
	return records, nil
}

// Generate produces a Dataset of n random Records. The length is validated against
// DefaultMinLength before anything is allocated.
func Generate(n int, conf *GenerateConf) (*Dataset, error) {
	if n <= DefaultMinLength {
		return nil, terrors.DatasetTooSmallError{Length: n, Min: DefaultMinLength}
	}
	records, err := GenerateRecords(n, conf)
	if err != nil {
		return nil, err
	}
	return New(records, DefaultMinLength)
}

// Generator is a DataSource producing random Records
type Generator struct {
	n    int
	conf *GenerateConf
}

// CreateGenerator returns a DataSource which generates n random Records on Load
func CreateGenerator(n int, conf *GenerateConf) *Generator {
	return &Generator{n: n, conf: conf}
}

// Load generates this Generator's Records
func (g *Generator) Load(ctx context.Context) ([]tally.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateRecords(g.n, g.conf)
}
