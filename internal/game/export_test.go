package game

// SecretForTest exposes the secret to tests in this package only.
func SecretForTest(s State) string { return s.secret }
