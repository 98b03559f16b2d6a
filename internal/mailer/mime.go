package mailer

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"mime"
	"sort"
	"strings"
	"time"
)

func formatAddress(name, addr string) string {
	if name == "" {
		return addr
	}
	encoded := mime.QEncoding.Encode("utf-8", name)
	return fmt.Sprintf("%s <%s>", encoded, addr)
}

func encodeSubject(subject string) string {
	return mime.QEncoding.Encode("utf-8", subject)
}

func newMessageID(domain string) string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return fmt.Sprintf("<%s@%s>", hex.EncodeToString(b), domain)
}

func buildMIMEMessage(e Email, messageIDDomain string) (string, error) {
	if len(e.To) == 0 {
		return "", fmt.Errorf("mailer: at least one recipient required")
	}
	if e.From == "" {
		return "", fmt.Errorf("mailer: from address required")
	}
	if e.Subject == "" {
		return "", fmt.Errorf("mailer: subject required")
	}
	if e.TextBody == "" && e.HTMLBody == "" {
		return "", fmt.Errorf("mailer: textBody or htmlBody required")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", newMessageID(messageIDDomain))
	fmt.Fprintf(&b, "From: %s\r\n", formatAddress(e.FromName, e.From))
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(e.To, ", "))
	if len(e.Cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(e.Cc, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", encodeSubject(e.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	// sorted so the output is stable
	keys := make([]string, 0, len(e.Headers))
	for k, v := range e.Headers {
		if k != "" && v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\r\n", k, e.Headers[k])
	}

	if len(e.Attachments) == 0 {
		writeBody(&b, e)
		return b.String(), nil
	}

	mixed := randomBoundary("mix")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n", mixed)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "--%s\r\n", mixed)
	writeBody(&b, e)
	for _, a := range e.Attachments {
		fmt.Fprintf(&b, "--%s\r\n", mixed)
		writeAttachment(&b, a)
	}
	fmt.Fprintf(&b, "--%s--\r\n", mixed)
	return b.String(), nil
}

// writeBody emits the Content-Type header and the text/html parts.
func writeBody(b *strings.Builder, e Email) {
	if e.TextBody != "" && e.HTMLBody != "" {
		boundary := randomBoundary("alt")
		fmt.Fprintf(b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
		b.WriteString("\r\n")

		fmt.Fprintf(b, "--%s\r\n", boundary)
		writePart(b, "text/plain", e.TextBody)
		fmt.Fprintf(b, "--%s\r\n", boundary)
		writePart(b, "text/html", e.HTMLBody)
		fmt.Fprintf(b, "--%s--\r\n", boundary)
		return
	}
	if e.HTMLBody != "" {
		writePart(b, "text/html", e.HTMLBody)
		return
	}
	writePart(b, "text/plain", e.TextBody)
}

func writePart(b *strings.Builder, contentType, body string) {
	fmt.Fprintf(b, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\r\n")
	}
}

func writeAttachment(b *strings.Builder, a Attachment) {
	ct := a.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	name := mime.QEncoding.Encode("utf-8", a.Filename)
	fmt.Fprintf(b, "Content-Type: %s; name=%q\r\n", ct, name)
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(b, "Content-Disposition: attachment; filename=%q\r\n", name)
	b.WriteString("\r\n")

	enc := base64.StdEncoding.EncodeToString(a.Data)
	for len(enc) > 76 {
		b.WriteString(enc[:76])
		b.WriteString("\r\n")
		enc = enc[76:]
	}
	if enc != "" {
		b.WriteString(enc)
		b.WriteString("\r\n")
	}
}

func randomBoundary(kind string) string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return kind + "-" + hex.EncodeToString(b)
}
