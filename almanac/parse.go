package almanac

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	seedsLabel = "seeds:"
	mapSuffix  = " map:"
)

// Parse reads the seeds line and every stage block. Blank lines separate
// blocks and are otherwise ignored.
func Parse(lines []string) (*Almanac, error) {
	a := &Almanac{}
	seenSeeds := false
	cur := -1 // index of the stage receiving rules
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, seedsLabel):
			if seenSeeds {
				return nil, fmt.Errorf("%w: line %d: second seeds line", ErrMalformedAlmanac, i+1)
			}
			seeds, err := ints(strings.TrimPrefix(line, seedsLabel))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedAlmanac, i+1, err)
			}
			a.Seeds, seenSeeds = seeds, true
		case strings.HasSuffix(line, mapSuffix):
			from, to, ok := strings.Cut(strings.TrimSuffix(line, mapSuffix), "-to-")
			if !ok || from == "" || to == "" {
				return nil, fmt.Errorf("%w: line %d: bad stage header %q", ErrMalformedAlmanac, i+1, line)
			}
			if n := len(a.Stages); n > 0 && a.Stages[n-1].To != from {
				return nil, fmt.Errorf("%w: line %d: %s-to-%s does not follow %s", ErrMalformedAlmanac, i+1, from, to, a.Stages[n-1].To)
			}
			a.Stages = append(a.Stages, Stage{From: from, To: to})
			cur = len(a.Stages) - 1
		default:
			if cur < 0 {
				return nil, fmt.Errorf("%w: line %d: rule outside a stage", ErrMalformedAlmanac, i+1)
			}
			vs, err := ints(line)
			if err != nil || len(vs) != 3 || vs[2] < 0 {
				return nil, fmt.Errorf("%w: line %d: want \"dst src len\", got %q", ErrMalformedAlmanac, i+1, line)
			}
			if vs[2] > 0 {
				a.Stages[cur].Rules = append(a.Stages[cur].Rules, Rule{Dst: vs[0], Src: vs[1], Len: vs[2]})
			}
		}
	}
	if !seenSeeds {
		return nil, fmt.Errorf("%w: no seeds line", ErrMalformedAlmanac)
	}
	for si := range a.Stages {
		s := &a.Stages[si]
		sort.Slice(s.Rules, func(i, j int) bool { return s.Rules[i].Src < s.Rules[j].Src })
		for i := 1; i < len(s.Rules); i++ {
			if prev := s.Rules[i-1]; prev.Src+prev.Len > s.Rules[i].Src {
				return nil, fmt.Errorf("%w: %s-to-%s: rules at %d and %d overlap", ErrMalformedAlmanac, s.From, s.To, prev.Src, s.Rules[i].Src)
			}
		}
	}

	return a, nil
}

func ints(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
