package handler

// Exported for tests in handler_test.
var WriteServiceError = writeServiceError
