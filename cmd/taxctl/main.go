// Command taxctl calls the tax jurisdiction research API from scripts with
// the machine token or a user's access token.
//
// Usage:
//
//	taxctl [-server URL] [-token TOKEN] [-timeout 60s] <command> [flags] [args]
//
// Commands:
//
//	login -u user [-p password]    print an access token for -token
//	health                         server and database status
//	version                        server and client versions
//	export [-format csv|xlsx] [-o file] [-state TX] [-type county] [-search s] [-hide-validated]
//	history <researchId>           edit history of a research result
//	invite [-code c] [-email e] [-max-uses n] [-expires 2026-12-31T00:00:00Z]
//	deactivate <userId>            disable a user and revoke their sessions
//
// Settings also come from TAXCTL_SERVER_URL, TAXCTL_MACHINE_TOKEN,
// TAXCTL_REQUEST_TIMEOUT and TAXCTL_LOG_LEVEL. login reads TAXCTL_PASSWORD
// when -p is not given.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
