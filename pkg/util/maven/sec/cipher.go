/*
Licensed to the Apache Software Foundation (ASF) under one or more
contributor license agreements.  See the NOTICE file distributed with
this work for additional information regarding copyright ownership.
The ASF licenses this file to You under the Apache License, Version 2.0
(the "License"); you may not use this file except in compliance with
the License.  You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"regexp"

	"github.com/pkg/errors"
)

const (
	saltSize  = 8
	chunkSize = 16
	spiceSize = 16
)

var encryptedStringRegexp = regexp.MustCompile(`(?s)^.*?[^\\]?\{(.*?[^\\])\}.*$`)

// Cipher implements the password based encryption used for the credentials of
// Maven settings: a random salt, AES-128/CBC with PKCS#5 padding, key and IV
// derived from SHA-256(password, salt), and a random trailing padding.
type Cipher struct {
	// Random is the source of salt and padding, crypto/rand by default.
	Random io.Reader
}

func (c Cipher) random() io.Reader {
	if c.Random != nil {
		return c.Random
	}
	return rand.Reader
}

// IsEncrypted tells if the given value holds a {...} encrypted string.
func IsEncrypted(value string) bool {
	return encryptedStringRegexp.MatchString(value)
}

// Undecorate extracts the encrypted payload from a {...} decorated value.
func Undecorate(value string) (string, error) {
	m := encryptedStringRegexp.FindStringSubmatch(value)
	if m == nil {
		return "", errors.Errorf("malformed encrypted string")
	}
	return m[1], nil
}

// Decorate --.
func Decorate(value string) string {
	return "{" + value + "}"
}

// Encrypt returns the base64 encoded encryption of the given text.
func (c Cipher) Encrypt(clearText string, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.random(), salt); err != nil {
		return "", errors.Wrap(err, "cannot generate salt")
	}

	block, iv, err := newBlock(password, salt)
	if err != nil {
		return "", err
	}

	encrypted := pkcs5Pad([]byte(clearText), aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(encrypted, encrypted)

	padLen := chunkSize - (saltSize+len(encrypted)+1)%chunkSize
	pad := make([]byte, padLen)
	if _, err := io.ReadFull(c.random(), pad); err != nil {
		return "", errors.Wrap(err, "cannot generate padding")
	}

	var buf bytes.Buffer
	buf.Write(salt)
	buf.WriteByte(byte(padLen))
	buf.Write(encrypted)
	buf.Write(pad)

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncryptAndDecorate --.
func (c Cipher) EncryptAndDecorate(clearText string, password string) (string, error) {
	encrypted, err := c.Encrypt(clearText, password)
	if err != nil {
		return "", err
	}
	return Decorate(encrypted), nil
}

// Decrypt reverses Encrypt.
func (c Cipher) Decrypt(encryptedText string, password string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encryptedText)
	if err != nil {
		return "", errors.Wrap(err, "malformed encrypted string")
	}
	if len(data) < saltSize+1 {
		return "", errors.New("malformed encrypted string: too short")
	}

	salt := data[:saltSize]
	padLen := int(data[saltSize])
	end := len(data) - padLen
	if end < saltSize+1 {
		return "", errors.New("malformed encrypted string: invalid padding")
	}
	encrypted := append([]byte(nil), data[saltSize+1:end]...)
	if len(encrypted) == 0 || len(encrypted)%aes.BlockSize != 0 {
		return "", errors.New("malformed encrypted string: invalid block size")
	}

	block, iv, err := newBlock(password, salt)
	if err != nil {
		return "", err
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(encrypted, encrypted)

	plain, err := pkcs5Unpad(encrypted, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// DecryptDecorated decrypts a {...} value.
func (c Cipher) DecryptDecorated(value string, password string) (string, error) {
	bare, err := Undecorate(value)
	if err != nil {
		return "", err
	}
	return c.Decrypt(bare, password)
}

func newBlock(password string, salt []byte) (cipher.Block, []byte, error) {
	digest := sha256.New()
	digest.Write([]byte(password))
	digest.Write(salt[:saltSize])
	keyAndIV := digest.Sum(nil)

	block, err := aes.NewCipher(keyAndIV[:spiceSize])
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot create cipher")
	}
	return block, keyAndIV[spiceSize : 2*spiceSize], nil
}

func pkcs5Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append([]byte(nil), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs5Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("malformed encrypted string: empty")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("malformed encrypted string: bad padding, the password may be wrong")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("malformed encrypted string: bad padding, the password may be wrong")
		}
	}
	return data[:len(data)-n], nil
}
