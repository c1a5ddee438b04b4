package admission

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// CodeGenerator produces check-in codes
type CodeGenerator interface {
	Generate() (string, error)
}

// RandomCodeGenerator generates "FD-" + 4 random digits. Collisions are not checked.
type RandomCodeGenerator struct{}

var codeSpace = big.NewInt(10_000)

func (RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerateCode, err)
	}
	return fmt.Sprintf("%s%0*d", domain.CheckInCodePrefix, domain.CheckInCodeDigits, n.Int64()), nil
}
