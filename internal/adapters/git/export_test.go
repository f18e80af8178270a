package git

var (
	ParseOutput    = parseOutput
	MatchPathspec  = matchPathspec
	RelativePrefix = relativePrefix
)
