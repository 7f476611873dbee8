package util

import (
	"crypto/md5"
	"encoding/hex"
)

// PasswordDigest 计算加盐 MD5 摘要（小写十六进制）。
// 盐值是历史遗留的固定常量，换掉会让存量用户的哈希全部失效。
func PasswordDigest(salt, password string) string {
	sum := md5.Sum([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
