// Package constants provides shared constants used throughout the draftboard codebase.
// This includes file permissions, upstream endpoints, default paths and the
// fixed vocabularies (scoring formats, league sizes, positions) the CLI accepts.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Upstream endpoints
const (
	// ADPBaseURL is the fantasyfootballcalculator ADP API root. The scoring format is
	// appended as a path segment.
	ADPBaseURL = "https://fantasyfootballcalculator.com/api/v1/adp"

	// SportsDataBaseURL is the SportsData.io API root.
	SportsDataBaseURL = "https://api.sportsdata.io"

	// SportsDataPlayersPath lists every NFL player with depth-chart information.
	SportsDataPlayersPath = "/v3/nfl/scores/json/Players"

	// SportsDataKeyHeader carries the SportsData.io subscription key.
	SportsDataKeyHeader = "Ocp-Apim-Subscription-Key"

	// SportsDataKeyEnv is the environment variable holding the SportsData.io key.
	SportsDataKeyEnv = "SPORTSDATA_KEY"

	// ADPSuccessStatus is the body-level status the ADP API reports on success.
	ADPSuccessStatus = "Success"
)

// Path constants
const (
	// DefaultRankingsDir holds <scoring>/<position>.csv ranking files.
	DefaultRankingsDir = "./ffrd"

	// DefaultOutputDir receives rendered boards.
	DefaultOutputDir = "./files"

	// DefaultCacheDir receives the JSON snapshots.
	DefaultCacheDir = "./files"

	// DepthChartSnapshotFile is the cached SportsData.io response.
	DepthChartSnapshotFile = "sports_data_io.json"

	// DatasetSnapshotPrefix prefixes the merged dataset snapshot name.
	DatasetSnapshotPrefix = "draft_board_data_"

	// DefaultConfigName is the config file name searched in $HOME and the working directory.
	DefaultConfigName = ".draftboard"
)

// Snapshot formatting
const (
	// SnapshotIndent matches the four-space indentation of the historical cache files.
	SnapshotIndent = "    "
)
