package csa

// sais computes the suffix array of s, a string over the integer alphabet
// [0, K), via the SA-IS algorithm (Nong, Zhang & Chen): classify suffixes
// as S-type/L-type, induce-sort LMS substrings, recurse on the reduced
// problem if LMS substrings aren't already pairwise distinct, then
// induce-sort the final suffix array from the sorted LMS suffixes.
//
// s must end in a unique minimum (its sentinel); this holds for any call
// made from Build, and for every recursive call this function makes on
// itself.
func sais(s []int32, k int) []int32 {
	n := len(s)
	sa := make([]int32, n)
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	sType := classifyTypes(s)
	lms := lmsPositions(s, sType)

	induceSort(s, sa, sType, k, lms)
	sortedLMS := collectSortedLMS(sa, sType)

	names, numNames := nameLMSSubstrings(s, sType, sortedLMS)
	orderedLMS := orderLMSByReducedSA(s, sType, lms, names, numNames)

	for i := range sa {
		sa[i] = -1
	}
	induceSort(s, sa, sType, k, orderedLMS)
	return sa
}

// classifyTypes marks each position S-type (true) or L-type (false).
// Position n-1 (the sentinel) is always S-type.
func classifyTypes(s []int32) []bool {
	n := len(s)
	t := make([]bool, n)
	t[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			t[i] = true
		case s[i] > s[i+1]:
			t[i] = false
		default:
			t[i] = t[i+1]
		}
	}
	return t
}

func isLMS(t []bool, i int) bool {
	return i > 0 && t[i] && !t[i-1]
}

func lmsPositions(s []int32, t []bool) []int32 {
	var lms []int32
	for i := 1; i < len(s); i++ {
		if isLMS(t, i) {
			lms = append(lms, int32(i))
		}
	}
	return lms
}

func collectSortedLMS(sa []int32, t []bool) []int32 {
	sorted := make([]int32, 0, len(sa))
	for _, pos := range sa {
		if pos > 0 && isLMS(t, int(pos)) {
			sorted = append(sorted, pos)
		}
	}
	return sorted
}

// induceSort places LMS suffixes at bucket tails, then induces L-type and
// S-type suffixes around them in two further passes.
func induceSort(s []int32, sa []int32, t []bool, k int, lms []int32) {
	for i := range sa {
		sa[i] = -1
	}
	bucketSizes := computeBucketSizes(s, k)

	tails := computeBucketTails(bucketSizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := computeBucketHeads(bucketSizes)
	for i := range sa {
		pos := sa[i]
		if pos > 0 && !t[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = computeBucketTails(bucketSizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && t[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
}

func computeBucketSizes(s []int32, k int) []int32 {
	sizes := make([]int32, k)
	for _, c := range s {
		sizes[c]++
	}
	return sizes
}

func computeBucketHeads(sizes []int32) []int32 {
	heads := make([]int32, len(sizes))
	var sum int32
	for i, v := range sizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func computeBucketTails(sizes []int32) []int32 {
	tails := make([]int32, len(sizes))
	var sum int32
	for i, v := range sizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

func lmsSubstringsEqual(s []int32, t []bool, i, j int) bool {
	n := len(s)
	first := true
	for {
		if s[i] != s[j] || t[i] != t[j] {
			return false
		}
		iIsLMS := isLMS(t, i)
		jIsLMS := isLMS(t, j)
		if !first && iIsLMS && jIsLMS {
			return true
		}
		if !first && iIsLMS != jIsLMS {
			return false
		}
		first = false
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}

// nameLMSSubstrings assigns each LMS position a name: equal LMS substrings
// (by lmsSubstringsEqual) share a name, names are otherwise strictly
// increasing in sortedLMS order.
func nameLMSSubstrings(s []int32, t []bool, sortedLMS []int32) (names []int32, numNames int) {
	names = make([]int32, len(s))
	for i := range names {
		names[i] = -1
	}
	name := int32(0)
	prev := int32(-1)
	for i, pos := range sortedLMS {
		if i > 0 && !lmsSubstringsEqual(s, t, int(prev), int(pos)) {
			name++
		}
		names[pos] = name
		prev = pos
	}
	return names, int(name) + 1
}

// orderLMSByReducedSA resolves the relative order of the original LMS
// positions, recursing into sais itself when names alone don't already
// distinguish every LMS substring.
func orderLMSByReducedSA(s []int32, t []bool, lms []int32, names []int32, numNames int) []int32 {
	reduced := make([]int32, len(lms))
	for i, pos := range lms {
		reduced[i] = names[pos]
	}

	var reducedSA []int32
	if numNames < len(reduced) {
		reducedSA = sais(reduced, numNames)
	} else {
		reducedSA = make([]int32, len(reduced))
		for i, name := range reduced {
			reducedSA[name] = int32(i)
		}
	}

	ordered := make([]int32, len(reducedSA))
	for i, idx := range reducedSA {
		ordered[i] = lms[idx]
	}
	return ordered
}
