package debate

import (
	"math/rand/v2"
	"sort"

	"github.com/abhisek/classim/internal/agent"
)

// Pair is one matched couple of students for a debate round.
type Pair struct {
	A *agent.Student
	B *agent.Student
}

// answerGroup keeps the students who share a first-round answer, in the
// order the answer was first seen.
type answerGroup struct {
	answer  string
	members []*agent.Student
}

// PairStudents matches students for one debate round from their initial
// positions. Students are partitioned by answer key; when only one
// distinct answer exists, the group is shuffled and paired arbitrarily.
// Otherwise, for every unordered pair of answer groups in first-seen
// order, the group with the higher mean confidence is sorted descending
// and the other ascending, then one student is popped from each side per
// pair. That matches the most confident holder of one view against the
// least confident holder of another. Each student joins at most one
// pair; leftovers sit the round out.
func PairStudents(students []*agent.Student, positions map[string]agent.Position, rng *rand.Rand) []Pair {
	groups := partitionByAnswer(students, positions)
	if len(groups) == 0 {
		return nil
	}

	if len(groups) == 1 {
		return pairWithinGroup(groups[0].members, rng)
	}

	used := make(map[string]bool, len(students))
	var pairs []Pair
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			gi := unusedMembers(groups[i].members, used)
			gj := unusedMembers(groups[j].members, used)
			if len(gi) == 0 || len(gj) == 0 {
				continue
			}

			high, low := gi, gj
			if meanConfidence(gj, positions) > meanConfidence(gi, positions) {
				high, low = gj, gi
			}
			sortByConfidence(high, positions, true)
			sortByConfidence(low, positions, false)

			for len(high) > 0 && len(low) > 0 {
				a, b := high[0], low[0]
				high, low = high[1:], low[1:]
				pairs = append(pairs, Pair{A: a, B: b})
				used[a.ID] = true
				used[b.ID] = true
			}
		}
	}
	return pairs
}

func partitionByAnswer(students []*agent.Student, positions map[string]agent.Position) []*answerGroup {
	index := make(map[string]*answerGroup)
	var groups []*answerGroup
	for _, s := range students {
		pos, ok := positions[s.ID]
		if !ok {
			continue
		}
		g := index[pos.Answer]
		if g == nil {
			g = &answerGroup{answer: pos.Answer}
			index[pos.Answer] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, s)
	}
	return groups
}

func pairWithinGroup(members []*agent.Student, rng *rand.Rand) []Pair {
	shuffled := make([]*agent.Student, len(members))
	copy(shuffled, members)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var pairs []Pair
	for i := 0; i+1 < len(shuffled); i += 2 {
		pairs = append(pairs, Pair{A: shuffled[i], B: shuffled[i+1]})
	}
	return pairs
}

func unusedMembers(members []*agent.Student, used map[string]bool) []*agent.Student {
	var out []*agent.Student
	for _, s := range members {
		if !used[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

func meanConfidence(members []*agent.Student, positions map[string]agent.Position) float64 {
	if len(members) == 0 {
		return 0
	}
	var sum float64
	for _, s := range members {
		sum += positions[s.ID].Confidence
	}
	return sum / float64(len(members))
}

func sortByConfidence(members []*agent.Student, positions map[string]agent.Position, descending bool) {
	sort.SliceStable(members, func(i, j int) bool {
		ci := positions[members[i].ID].Confidence
		cj := positions[members[j].ID].Confidence
		if descending {
			return ci > cj
		}
		return ci < cj
	})
}
