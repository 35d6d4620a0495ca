package config

// Manifest is a batch of puzzle runs loaded from YAML.
type Manifest struct {
	// Workers bounds the goroutines used by puzzles that parallelize.
	Workers int `yaml:"workers"`
	// Runs execute in file order.
	Runs []Run `yaml:"runs"`
}

// Run is one puzzle invocation.
type Run struct {
	Day int `yaml:"day"`
	// Input is resolved relative to the manifest's directory unless absolute.
	Input  string  `yaml:"input"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect holds known answers. A nil part is not checked.
type Expect struct {
	Part1 *int64 `yaml:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty"`
}
