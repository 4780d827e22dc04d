package common

const (
	CacheKeyChart      = "chart:%s:%s:%d:%d:%s"
	CacheKeyNewsPrefix = "news:"
	CacheKeyNewsList   = CacheKeyNewsPrefix + "list:%s"

	DataSourceFixture  = "fixture"
	DataSourcePostgres = "postgres"

	DefaultHistoryRange = "1m"

	DefaultMoversLimit        = 5
	DefaultTopPredictionLimit = 5
	DashboardPredictionCount  = 3
	DashboardMoversCount      = 4
	NewsFeedSideCount         = 3
)
