package model

// GlobalMetaID is the fixed record ID of the singleton counters document.
const GlobalMetaID = "meta:global"

// GlobalMeta holds site-wide counters. Users is incremented once per
// registration inside the registration transaction; the view counters are
// best-effort increments and ViewsToday resets at midnight UTC.
type GlobalMeta struct {
	Users      int64 `json:"users"`
	ViewsToday int64 `json:"views_today"`
	TotalViews int64 `json:"total_views"`
}
