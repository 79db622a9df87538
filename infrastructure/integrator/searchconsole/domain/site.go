package gscdomain

type SitesResponse struct {
	SiteEntry []SiteEntry `json:"siteEntry"`
}

type SiteEntry struct {
	SiteURL         string `json:"siteUrl"`
	PermissionLevel string `json:"permissionLevel"`
}
