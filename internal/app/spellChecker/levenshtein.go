package spellChecker

// Distance is the Levenshtein edit distance between a and b counted in runes.
func Distance(a, b string) int {
	return distance([]rune(a), []rune(b))
}

func distance(word1, word2 []rune) int {
	w1, w2 := len(word1), len(word2)
	if w1 == 0 {
		return w2
	}
	if w2 == 0 {
		return w1
	}

	dp := make([][]int, w1 + 1)
	for i := range w1 + 1 {
		dp[i] = make([]int, w2 + 1)
		dp[i][0] = i
	}
	for j := range w2 + 1 {
		dp[0][j] = j
	}

	for i := 1; i <= w1; i++ {
		for j := 1; j <= w2; j++ {
			if word1[i - 1] == word2[j - 1] {
				dp[i][j] = dp[i - 1][j - 1]
			} else {
				insert := dp[i - 1][j]
				delete := dp[i][j - 1]
				replace := dp[i - 1][j - 1]
				dp[i][j] = min(delete, insert, replace) + 1
			}
		}
	}

	return dp[w1][w2]
}
