package domain

// TestInvocationRecord represents one test execution reported in a CTest
// verbose transcript
type TestInvocationRecord struct {
	Command          string `json:"command"`           // Full command line as reported
	Executable       string `json:"executable"`        // Last whitespace token of the command line
	WorkingDirectory string `json:"working_directory"` // Raw directory string after the marker (not trimmed)
	TestName         string `json:"test_name"`         // Last whitespace token of the test-name line
}
