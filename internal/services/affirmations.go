package services

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed affirmations.yaml
var affirmationsRaw []byte

type affirmationFile struct {
	Affirmations []string `yaml:"affirmations"`
}

var (
	affirmationsOnce sync.Once
	affirmationPool  []string
)

// defaultAffirmations is the fallback reminder content used when a user has
// no favorites to draw from. The pool ships with the binary.
func defaultAffirmations() []string {
	affirmationsOnce.Do(func() {
		var parsed affirmationFile
		if err := yaml.Unmarshal(affirmationsRaw, &parsed); err != nil {
			affirmationPool = []string{"Take a breath. You are doing better than you think."}
			return
		}
		affirmationPool = parsed.Affirmations
	})
	return affirmationPool
}
