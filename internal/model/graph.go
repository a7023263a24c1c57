package model

// EdgeState is the viewer side of a follow edge, read before a toggle to
// decide direction and enforce the following cap.
type EdgeState struct {
	Follows        bool  `json:"follows"`
	FollowingCount int64 `json:"following_count"`
}

// ToggleResult reports the outcome of a follow toggle with counts for
// optimistic UI refresh.
type ToggleResult struct {
	Following       bool  `json:"following"`
	ViewerFollowing int64 `json:"viewer_following"`
	TargetFollowers int64 `json:"target_followers"`
}
