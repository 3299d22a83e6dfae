package github

// User is the profile information of one GitHub account.
type User struct {
	Username    string `json:"username,omitempty"`
	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Email       string `json:"email,omitempty"`
	Blog        string `json:"blog,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	ProfileURL  string `json:"profileUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	Hireable    bool   `json:"hireable,omitempty"`
	PublicRepos int    `json:"publicRepos"`
	PublicGists int    `json:"publicGists"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// Repository is one public repository of the account.
type Repository struct {
	Name          string   `json:"name"`
	FullName      string   `json:"fullName,omitempty"`
	Description   string   `json:"description,omitempty"`
	URL           string   `json:"url,omitempty"`
	Homepage      string   `json:"homepage,omitempty"`
	Language      string   `json:"language,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	License       string   `json:"license,omitempty"`
	DefaultBranch string   `json:"defaultBranch,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
	PushedAt      string   `json:"pushedAt,omitempty"`
	Review        string   `json:"llmReview,omitempty"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	Watchers      int      `json:"watchers"`
	OpenIssues    int      `json:"openIssues"`
	Size          int      `json:"size"`
	Fork          bool     `json:"isFork,omitempty"`
	Archived      bool     `json:"isArchived,omitempty"`
}

// Organization is one public organization membership.
type Organization struct {
	Login       string `json:"login"`
	URL         string `json:"url,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// StarredRepo is one repository the account has starred.
type StarredRepo struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
}

// Account aggregates everything fetched for one GitHub account.
type Account struct {
	User          User           `json:"profile"`
	Repositories  []Repository   `json:"repositories"`
	Organizations []Organization `json:"organizations"`
	Starred       []StarredRepo  `json:"starredRepositories"`
}

// Wire types mirror the GitHub REST v3 response shapes.

type apiUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Blog        string `json:"blog"`
	Twitter     string `json:"twitter_username"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Hireable    bool   `json:"hireable"`
	PublicRepos int    `json:"public_repos"`
	PublicGists int    `json:"public_gists"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

type apiRepo struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	HTMLURL       string   `json:"html_url"`
	Homepage      string   `json:"homepage"`
	Language      string   `json:"language"`
	Topics        []string `json:"topics"`
	DefaultBranch string   `json:"default_branch"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
	PushedAt      string   `json:"pushed_at"`
	License       *struct {
		Name string `json:"name"`
	} `json:"license"`
	Stars      int  `json:"stargazers_count"`
	Forks      int  `json:"forks_count"`
	Watchers   int  `json:"watchers_count"`
	OpenIssues int  `json:"open_issues_count"`
	Size       int  `json:"size"`
	Fork       bool `json:"fork"`
	Archived   bool `json:"archived"`
}

type apiOrg struct {
	Login       string `json:"login"`
	HTMLURL     string `json:"html_url"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description"`
}

type apiReadme struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
