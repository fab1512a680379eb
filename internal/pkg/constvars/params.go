package constvars

const (
	URLParamDoctorID = "doctor_id"
)

const (
	URLQueryParamSearch        = "search"
	URLQueryParamSpecialty     = "specialty"
	URLQueryParamOpenOnly      = "open_only"
	URLQueryParamFavoritesOnly = "favorites_only"
	URLQueryParamFavoriteIDs   = "favorite_ids"
	URLQueryParamSortBy        = "sort_by"
	URLQueryParamPage          = "page"
	URLQueryParamPageSize      = "page_size"
)
