package samples

// SampleGetInput identifies a sample profile by id.
type SampleGetInput struct {
	ID string `path:"id" doc:"Sample profile identifier" example:"software_developer"`
}
