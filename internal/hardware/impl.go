// Package hardware provides hardware accelerated implementations.
package hardware

import "gitlab.com/yawning/blockcipher.git/internal/api"

// AESFactory is a factory that will construct hardware backed AES
// implementations if supported.
var AESFactory api.Factory
