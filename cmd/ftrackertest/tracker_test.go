package main

import (
	"strings"

	"github.com/stretchr/testify/suite"
)

var sampleBatchOutput = []string{
	"Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg. speed: 1.000 km/h; Calories burned: 336.000.",
	"Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg. speed: 9.750 km/h; Calories burned: 797.805.",
	"Workout type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Avg. speed: 5.850 km/h; Calories burned: 349.252.",
}

type TrackerSuite struct {
	suite.Suite
}

func (suite *TrackerSuite) SetupSuite() {
	suite.Require().NotEmpty(flagTargetBinaryPath, "-binary-path non-empty flag required")
}

func (suite *TrackerSuite) TestSampleBatch() {
	e := New(suite.T())
	res := RunTracker(e)

	suite.Require().Equalf(0, res.ExitCode, "Process exited with a non-zero code, STDERR:\n%s", res.Stderr)
	suite.Assert().Equal(sampleBatchOutput, outputLines(res.Stdout),
		"Output without arguments does not match the sample batch")
	suite.Assert().Empty(res.Stderr, "Nothing should be written to STDERR for valid packages")
}

func (suite *TrackerSuite) TestCustomPackages() {
	e := New(suite.T())
	res := RunTracker(e,
		"-package", "RUN:1206,12,6",
		"-package", "WLK:9000,1.5,75,180",
	)

	suite.Require().Equalf(0, res.ExitCode, "Process exited with a non-zero code, STDERR:\n%s", res.Stderr)
	suite.Assert().Equal([]string{
		"Workout type: Running; Duration: 12.000 h.; Distance: 0.784 km; Avg. speed: 0.065 km/h; Calories burned: 12.812.",
		"Workout type: SportsWalking; Duration: 1.500 h.; Distance: 5.850 km; Avg. speed: 3.900 km/h; Calories burned: 364.084.",
	}, outputLines(res.Stdout), "Packages from -package flags should be processed in order")
}

func (suite *TrackerSuite) TestUnknownKind() {
	e := New(suite.T())
	res := RunTracker(e,
		"-package", "XYZ:15000,1,75",
		"-package", "RUN:15000,1,75",
	)

	suite.Assert().Equal(1, res.ExitCode, "Process should exit with code 1 on an unknown workout kind")
	suite.Assert().Equal(sampleBatchOutput[1:2], outputLines(res.Stdout),
		"A failed package should not stop the rest of the batch")
	suite.Assert().Contains(res.Stderr, `"XYZ"`, "Error message should contain the unknown workout code")
	for _, kind := range []string{"SWM", "RUN", "WLK"} {
		suite.Assert().Contains(res.Stderr, kind, "Error message should list the valid workout codes")
	}
}

func (suite *TrackerSuite) TestArityMismatch() {
	e := New(suite.T())
	res := RunTracker(e, "-package", "SWM:720,1,80,25")

	suite.Assert().Equal(1, res.ExitCode, "Process should exit with code 1 on a wrong number of values")
	suite.Assert().Empty(strings.TrimSpace(res.Stdout))
	suite.Assert().Contains(res.Stderr, "SWM expects 5 values, got 4")
}

func (suite *TrackerSuite) TestInvalidDuration() {
	e := New(suite.T())
	res := RunTracker(e, "-package", "RUN:15000,0,75")

	suite.Assert().Equal(1, res.ExitCode, "Process should exit with code 1 on a zero duration")
	suite.Assert().Contains(res.Stderr, "duration must be positive")
}

func (suite *TrackerSuite) TestBadFlag() {
	e := New(suite.T())
	res := RunTracker(e, "-package", "RUN-15000-1-75")

	suite.Assert().Equal(2, res.ExitCode, "Process should exit with code 2 on a malformed flag value")
	suite.Assert().Empty(strings.TrimSpace(res.Stdout))
}

func outputLines(stdout string) []string {
	stdout = strings.TrimRight(stdout, "\n")
	if stdout == "" {
		return nil
	}
	return strings.Split(stdout, "\n")
}
