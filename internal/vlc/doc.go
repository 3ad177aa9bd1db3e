// Package vlc previews clip plans with the VLC media player.
package vlc
