package cmd

type Config struct {
	HTTPPort          string
	DataDir           string
	StorePath         string
	HistoryDir        string
	MenuPath          string
	DelayThresholdMin string
	SeedTables        string
	SeedTableCapacity string
}
