package keyword

// Ratio returns a similarity score in [0,100] between two normalized strings,
// 100 meaning identical. It is the Levenshtein distance normalized by the
// longer string's rune length.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}

	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 100
	}

	return 100 * (1 - float64(levenshtein(a, b))/float64(longest))
}

// levenshtein computes edit distance with unit cost for insertion, deletion
// and substitution, using a single-row DP over runes.
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			dp[j] = min(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = tmp
		}
	}

	return dp[m]
}
