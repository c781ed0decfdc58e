package app

func userScope(userID string) string {
	return "user:" + userID
}

func listScope(listID string) string {
	return "list:" + listID
}
