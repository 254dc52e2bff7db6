package provision

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"time"

	"github.com/capsulehq/capsulectl/internal/config"
	"github.com/capsulehq/capsulectl/internal/paths"
)

const (

	// RSA key size for the generated pair. The daemon's certificate store
	// loads PKCS#8 RSA keys from key.rsa.
	keyBits = 4096

	// Validity of the self-signed certificate. The pair is never
	// regenerated, so a short validity would force manual rotation; ten
	// years matches common self-signed Gemini practice.
	certValidity = 10 * 365 * 24 * time.Hour
)

// Returns a step ensuring a TLS key pair exists for the domain.
//
// An existing pair is left untouched, whatever its contents: regenerating
// would silently invalidate a certificate the operator may have replaced
// with a managed one. A half-present pair (key without certificate or the
// reverse) is broken state and fails rather than being papered over.
func credentialStep(cfg config.Config, uid, gid int) step {
	certFile := cfg.CertFile()
	keyFile := cfg.KeyFile()

	return step{
		name: "tls certificate",
		hint: fmt.Sprintf("remove both %s and %s to regenerate", certFile, keyFile),
		check: func(ctx context.Context) (bool, error) {
			certOK := fileExists(certFile)
			keyOK := fileExists(keyFile)
			switch {
			case certOK && keyOK:
				return true, nil
			case certOK:
				return false, fmt.Errorf("%w: %s exists but %s is missing", ErrCredentialGeneration, certFile, keyFile)
			case keyOK:
				return false, fmt.Errorf("%w: %s exists but %s is missing", ErrCredentialGeneration, keyFile, certFile)
			default:
				return false, nil
			}
		},
		apply: func(ctx context.Context) error {
			if err := generatePair(cfg.Domain, certFile, keyFile, uid, gid); err != nil {
				return fmt.Errorf("%w: %v", ErrCredentialGeneration, err)
			}
			return nil
		},
	}
}

// Generates a self-signed certificate and private key bound to the domain.
//
// The key is written first with owner-only permissions; the certificate is
// world-readable. Both files are PEM: the certificate as CERTIFICATE, the
// key as an unencrypted PKCS#8 PRIVATE KEY.
func generatePair(domain, certFile, keyFile string, uid, gid int) error {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return fmt.Errorf("generating key: %v", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("generating serial: %v", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: domain},
		DNSNames:              []string{domain},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(certValidity),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return fmt.Errorf("creating certificate: %v", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("encoding key: %v", err)
	}

	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	if err := writeFileOwned(keyFile, keyPEM, paths.KeyFileMode, uid, gid); err != nil {
		return fmt.Errorf("writing %s: %v", keyFile, err)
	}
	if err := writeFileOwned(certFile, certPEM, paths.DefaultFileMode, uid, gid); err != nil {
		return fmt.Errorf("writing %s: %v", certFile, err)
	}

	return nil
}
