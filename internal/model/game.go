package model

import (
    "strings"
    "time"
)

// Platform identifies a hardware platform a game can be available on.
// The vocabulary is fixed; anything outside it is folded into
// PlatformOther so the availability map never carries unknown keys.
type Platform string

const (
    PlatformPC     Platform = "pc"
    PlatformPS5    Platform = "ps5"
    PlatformPS4    Platform = "ps4"
    PlatformPS3    Platform = "ps3"
    PlatformPS2    Platform = "ps2"
    PlatformPS1    Platform = "ps"
    PlatformXSX    Platform = "xsx"
    PlatformXOne   Platform = "xone"
    PlatformX360   Platform = "x360"
    PlatformXbox   Platform = "xbox"
    PlatformSwitch Platform = "switch"
    PlatformWiiU   Platform = "wiiu"
    PlatformWii    Platform = "wii"
    Platform3DS    Platform = "3ds"
    PlatformDS     Platform = "ds"
    PlatformPSP    Platform = "psp"
    PlatformVita   Platform = "vita"
    PlatformGC     Platform = "gc"
    PlatformN64    Platform = "n64"
    PlatformGB     Platform = "gb"
    PlatformGBA    Platform = "gba"
    PlatformSNES   Platform = "snes"
    PlatformNES    Platform = "nes"
    PlatformSega   Platform = "sega"
    PlatformMobile Platform = "mobile"
    PlatformOther  Platform = "other"
)

// knownPlatforms is the full vocabulary used for validation.
var knownPlatforms = map[Platform]bool{
    PlatformPC: true, PlatformPS5: true, PlatformPS4: true, PlatformPS3: true,
    PlatformPS2: true, PlatformPS1: true, PlatformXSX: true, PlatformXOne: true,
    PlatformX360: true, PlatformXbox: true, PlatformSwitch: true, PlatformWiiU: true,
    PlatformWii: true, Platform3DS: true, PlatformDS: true, PlatformPSP: true,
    PlatformVita: true, PlatformGC: true, PlatformN64: true, PlatformGB: true,
    PlatformGBA: true, PlatformSNES: true, PlatformNES: true, PlatformSega: true,
    PlatformMobile: true, PlatformOther: true,
}

// PlatformSet is a sparse availability map: an absent key means the game
// is not available on that platform, the same as an explicit false.
type PlatformSet map[Platform]bool

// Normalize lower-cases every key and folds unknown platforms into
// PlatformOther. The receiver is not modified.
func (p PlatformSet) Normalize() PlatformSet {
    out := make(PlatformSet, len(p))
    for k, v := range p {
        key := Platform(strings.ToLower(strings.TrimSpace(string(k))))
        if !knownPlatforms[key] {
            key = PlatformOther
        }
        if v {
            out[key] = true
        } else if _, seen := out[key]; !seen {
            out[key] = false
        }
    }
    return out
}

// Has reports whether the game is flagged available on the platform.
func (p PlatformSet) Has(key Platform) bool { return p[key] }

// Game is a single catalog entry representing one sellable title.
//
// Fields:
//  ID          – numeric identifier, assigned sequentially on creation.
//  Title       – non-empty title.
//  Description – at least 10 characters by validation contract.
//  ReleaseDate – calendar date of release.
//  Platforms   – sparse availability map (see PlatformSet).
//  Genre       – free text; the form layer validates against a known list.
//  Developer   – non-empty.
//  Publisher   – non-empty.
//  Price       – positive currency amount.
//  Stock       – non-negative unit count.
//  ImageURL    – optional cover reference (URL or inline data).
//  CreatedAt   – set once on creation, immutable afterwards.
type Game struct {
    ID          uint64      `json:"id"`
    Title       string      `json:"title"`
    Description string      `json:"description"`
    ReleaseDate time.Time   `json:"releaseDate"`
    Platforms   PlatformSet `json:"platforms"`
    Genre       string      `json:"genre"`
    Developer   string      `json:"developer"`
    Publisher   string      `json:"publisher"`
    Price       float64     `json:"price"`
    Stock       int         `json:"stock"`
    ImageURL    *string     `json:"imageUrl"`
    CreatedAt   time.Time   `json:"createdAt"`
}

// GamePatch carries a partial update. Nil fields are left untouched;
// a non-nil field fully replaces the stored value. ID and CreatedAt
// cannot be patched.
type GamePatch struct {
    Title       *string      `json:"title"`
    Description *string      `json:"description"`
    ReleaseDate *time.Time   `json:"releaseDate"`
    Platforms   *PlatformSet `json:"platforms"`
    Genre       *string      `json:"genre"`
    Developer   *string      `json:"developer"`
    Publisher   *string      `json:"publisher"`
    Price       *float64     `json:"price"`
    Stock       *int         `json:"stock"`
    ImageURL    *string      `json:"imageUrl"`
}
