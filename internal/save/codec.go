// Package save implements the profile export/import codec. The blob format is
//
//	RPG_SAVE|<checksum>|<base64 payload>
//
// where the payload is the JSON envelope XOR'd against a fixed key and the
// checksum is a base36 rolling hash over the encoded payload plus a salt.
// This is an integrity check against accidental corruption, not encryption.
package save

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
)

// Version is the envelope format version
const Version = "1.0"

const (
	magicHeader = "RPG_SAVE"
	cipherKey   = "RPG_G4M3_K3Y_2024"
	hashSalt    = "RPG_CH3CK5UM_S4LT"
)

// Snapshot is a full profile: every character with its per-character state,
// plus the account-scoped containers and ledgers.
type Snapshot struct {
	Characters           []*entities.Character
	SelectedID           string
	CharacterInventories map[string]*entities.CharacterInventory
	AccountInventory     *entities.AccountInventory
	CharacterCurrencies  map[string]*entities.CharacterCurrency
	AccountCurrency      *entities.AccountCurrency
	Skills               map[string]*entities.CharacterSkills
	Equipment            map[string]*entities.CharacterEquipment
	Quests               map[string][]*entities.PlayerQuest
	Maps                 map[string][]*entities.MapProgress
}

type envelope struct {
	Version   string    `json:"version"`
	Timestamp int64     `json:"timestamp"`
	Data      *Snapshot `json:"data"`
}

// Info summarizes a blob without fully restoring it
type Info struct {
	Version   string
	Timestamp int64
	Size      int
}

// Encode serializes a snapshot into a save blob
func Encode(snap *Snapshot, now time.Time) (string, error) {
	if snap == nil {
		return "", errors.InvalidArgument("snapshot cannot be nil")
	}

	raw, err := json.Marshal(envelope{
		Version:   Version,
		Timestamp: now.UnixMilli(),
		Data:      snap,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize save data")
	}

	encoded := base64.StdEncoding.EncodeToString(xorBytes(raw))
	return magicHeader + "|" + checksum(encoded) + "|" + encoded, nil
}

// Decode restores a snapshot from a save blob, rejecting malformed or
// tampered input
func Decode(blob string) (*Snapshot, error) {
	snap, _, err := decode(blob)
	return snap, err
}

// Validate checks a blob without returning its contents
func Validate(blob string) error {
	_, _, err := decode(blob)
	return err
}

// Inspect returns blob metadata without restoring the profile
func Inspect(blob string) (*Info, error) {
	_, env, err := decode(blob)
	if err != nil {
		return nil, err
	}
	return &Info{Version: env.Version, Timestamp: env.Timestamp, Size: len(blob)}, nil
}

func decode(blob string) (*Snapshot, *envelope, error) {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return nil, nil, errors.InvalidArgument("save data cannot be empty")
	}

	parts := strings.Split(blob, "|")
	if len(parts) != 3 {
		return nil, nil, errors.InvalidArgument("malformed save data, expected header|checksum|payload")
	}
	header, sum, encoded := parts[0], parts[1], parts[2]

	if header != magicHeader {
		return nil, nil, errors.InvalidArgumentf("not a save blob, header %q", header)
	}
	if sum != checksum(encoded) {
		return nil, nil, errors.InvalidArgument("save data is corrupted or has been tampered with")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "save payload is not valid base64")
	}

	var env envelope
	if err := json.Unmarshal(xorBytes(raw), &env); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse save envelope")
	}
	if env.Data == nil {
		return nil, nil, errors.InvalidArgument("save envelope carries no data")
	}

	return env.Data, &env, nil
}

// xorBytes is its own inverse: applying it twice with the same key restores
// the input.
func xorBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ cipherKey[i%len(cipherKey)]
	}
	return out
}

// checksum computes the base36 rolling hash of the encoded payload plus the
// salt, with 32-bit wrapping.
func checksum(encoded string) string {
	var c int32
	for _, b := range []byte(encoded + hashSalt) {
		c = (c << 5) - c + int32(b)
	}
	v := int64(c)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
