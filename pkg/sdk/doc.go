// Package cmdhint embeds the cmdhint lookup service in a Go program
// without running the HTTP server.
//
//	client, _ := cmdhint.New(ctx, cmdhint.WithRedis("localhost:6379", ""),
//	    cmdhint.WithDataFiles("data.json", "synonyms.json"),
//	)
//	defer client.Close()
//
//	_, _ = client.Load(ctx)
//	line, err := client.Command(ctx, "linux", "list+hidden+files")
//	if errors.Is(err, cmdhint.ErrNotFound) {
//	    // no command matched
//	}
package cmdhint
