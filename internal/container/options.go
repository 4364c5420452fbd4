// Package container wires the application together with samber/do provider
// packages, one per concern.
package container

// Options holds the CLI/environment configuration.
type Options struct {
	Port          int    `default:"8888"                                     help:"Port to listen on"                     short:"p"`
	DatabaseURL   string `default:"postgres://localhost:5432/shortsecure"    help:"PostgreSQL connection string"          short:"d"`
	RedisAddr     string `default:"localhost:6379"                           help:"Redis server address"                  short:"r"`
	CodeLength    int    `default:"7"                                        help:"Length of generated short codes"       short:"c"`
	AccessSecret  string `default:"dev-access-secret"                        help:"HS256 signing secret for access tokens"`
	RefreshSecret string `default:"dev-refresh-secret"                       help:"HS256 signing secret for refresh tokens"`
	AccessTTL     int    `default:"900"                                      help:"Access token lifetime in seconds"`
	RefreshTTL    int    `default:"604800"                                   help:"Refresh token lifetime in seconds"`
	LogFormat     string `default:"console"                                  help:"Log format: console or json"`
}
