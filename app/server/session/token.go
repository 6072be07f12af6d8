package session

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// 压缩后的令牌布局: header JSON '\n' payload JSON '\n' 原始签名
// JSON 中不会出现未转义的换行，签名放在最后，可以包含任意字节
var tokenSep = []byte{'\n'}

// packToken 把 JWT 三段还原为原始字节，避免加密后再次 base64 造成膨胀
func packToken(token string) ([]byte, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed token: %d segments", len(parts))
	}

	raw := make([][]byte, len(parts))
	for i, part := range parts {
		b, err := base64.RawURLEncoding.DecodeString(part)
		if err != nil {
			return nil, fmt.Errorf("decode token segment %d: %w", i, err)
		}
		raw[i] = b
	}

	return bytes.Join(raw, tokenSep), nil
}

// unpackToken 是 packToken 的逆过程，重新得到可校验签名的 JWT
func unpackToken(packed []byte) (string, error) {
	raw := bytes.SplitN(packed, tokenSep, 3)
	if len(raw) != 3 {
		return "", fmt.Errorf("malformed packed token")
	}

	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = base64.RawURLEncoding.EncodeToString(b)
	}

	return strings.Join(parts, "."), nil
}
