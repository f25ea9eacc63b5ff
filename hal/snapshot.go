package hal

import (
	"fmt"
	"image/png"
	"os"
)

func writeSnapshot(path string, surfaces []Surface) error {
	if len(surfaces) == 0 || surfaces[0].Image() == nil {
		return fmt.Errorf("hal: snapshot %s: no surface attached", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hal: snapshot: %w", err)
	}
	if err := png.Encode(f, surfaces[0].Image()); err != nil {
		f.Close()
		return fmt.Errorf("hal: snapshot %s: %w", path, err)
	}
	return f.Close()
}
