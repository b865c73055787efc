package search

// EditDistance is the classic Levenshtein distance over runes: insert,
// delete and substitute each cost 1.
func EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	al, bl := len(ra), len(rb)

	dp := make([][]int, bl+1)
	for i := 0; i <= bl; i++ {
		dp[i] = make([]int, al+1)
	}
	for i := 0; i <= bl; i++ {
		dp[i][0] = i
	}
	for j := 0; j <= al; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= bl; i++ {
		for j := 1; j <= al; j++ {
			cost := 0
			if rb[i-1] != ra[j-1] {
				cost = 1
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}
	return dp[bl][al]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
