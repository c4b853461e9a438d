package helpers

import (
	"os"
	"strings"
)

func IsDeployed() bool {
	sstStage := os.Getenv("SST_STAGE")
	// `feature/*` branches are deployed to aws as `feature-*`
	return sstStage == "prod" || strings.HasPrefix(sstStage, "feature-")
}

// GetDbTableName resolves the physical table name. Deployed stages read it
// from the SST-provided env var, everything else uses tableName as given.
func GetDbTableName(tableName string) string {
	if !IsDeployed() {
		return tableName
	}
	return os.Getenv("SST_Table_tableName_" + PizzaTablePrefix)
}
