package cli

// Flag constants for asset CLI commands
const (
	// Address flags
	FlagBech32Prefix = "bech32-prefix"

	// Message flags
	FlagSubMsg = "submsg"
)
