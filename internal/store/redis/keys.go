package redis

// Key naming convention:
//   bookmarks:user:<userID>  SET of contest IDs
//   bookmarks:users          SET of user IDs with at least one bookmark

func UserBookmarksKey(userID string) string {
	return "bookmarks:user:" + userID
}

func AllUsersKey() string {
	return "bookmarks:users"
}
