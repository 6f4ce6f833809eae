package api

// Export functions for testing
var Truncate = truncate
