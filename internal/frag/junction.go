package frag

import "fmt"

// Junction is the overlap between two neighboring fragments.
type Junction struct {
	// Left is the name of the upstream fragment
	Left string `json:"left" yaml:"left"`

	// Right is the name of the downstream fragment
	Right string `json:"right" yaml:"right"`

	// Seq is the last overlap bp of Left
	Seq string `json:"seq" yaml:"seq"`

	// Match is whether Seq is also the first overlap bp of Right
	Match bool `json:"match" yaml:"match"`
}

// Junctions re-checks the overlap between each fragment and the next.
func Junctions(frags []Fragment, overlap int) []Junction {
	if len(frags) < 2 {
		return nil
	}

	junctions := make([]Junction, 0, len(frags)-1)
	for i, f := range frags[:len(frags)-1] {
		next := frags[i+1]
		j := Junction{Left: f.Name, Right: next.Name}

		if overlap <= len(f.Seq) && overlap <= len(next.Seq) {
			j.Seq = f.Seq[len(f.Seq)-overlap:]
			j.Match = f.End-next.Start == overlap && j.Seq == next.Seq[:overlap]
		}

		junctions = append(junctions, j)
	}

	return junctions
}

// Verify returns an error naming the first junction without an exact overlap.
func Verify(frags []Fragment, overlap int) error {
	for _, j := range Junctions(frags, overlap) {
		if !j.Match {
			return fmt.Errorf("no %dbp overlap between %s and %s", overlap, j.Left, j.Right)
		}
	}
	return nil
}
