package services

import "secretsanta/internal/models"

// scriptedRand replays fixed shuffles and integers. Once a script runs out,
// Shuffle leaves the order untouched and IntN returns 0.
type scriptedRand struct {
	shuffles [][][2]int
	ints     []int
}

func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	if len(r.shuffles) == 0 {
		return
	}
	next := r.shuffles[0]
	r.shuffles = r.shuffles[1:]
	for _, s := range next {
		swap(s[0], s[1])
	}
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func participants(namesAndGroups ...string) []models.Participant {
	out := make([]models.Participant, 0, len(namesAndGroups)/2)
	for i := 0; i+1 < len(namesAndGroups); i += 2 {
		out = append(out, models.Participant{Name: namesAndGroups[i], Group: namesAndGroups[i+1]})
	}
	return out
}

func officeRoster() []models.Participant {
	return participants(
		"Emilio", "A",
		"Iris Vargas", "A",
		"Karol", "B",
		"Christian (Grande)", "B",
		"Renato", "C",
		"Eduardo", "C",
		"Martin", "C",
		"Joaquin", "D",
		"Yoyo", "D",
		"Antonio", "E",
		"Iris Hinojosa", "E",
	)
}
