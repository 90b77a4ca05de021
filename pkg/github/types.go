package github

type userResponse struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

type repoResponse struct {
	Name     string `json:"name"`
	Stars    int    `json:"stargazers_count"`
	Language string `json:"language"`
}

// contributionsResponse is the payload of the public contributions API:
// per-year totals and one entry per calendar day.
type contributionsResponse struct {
	Total         map[string]int `json:"total"`
	Contributions []struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	} `json:"contributions"`
}
