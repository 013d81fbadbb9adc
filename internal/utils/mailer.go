package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// SendResetLink fait suivre le lien de réinitialisation. Sans SMTP configuré,
// l'étape « envoi » se contente d'écrire le lien en console — le canal de
// livraison réel (SMS/email) est un collaborateur externe.
func SendResetLink(email, name, link string) {
	if os.Getenv("SMTP_HOST") == "" {
		log.Println("🔗 Lien de réinitialisation:", link)
		return
	}

	if err := sendResetEmail(email, name, link); err != nil {
		log.Printf("❌ Erreur envoi email reset à %s: %v", email, err)
	} else {
		log.Printf("✅ Email de réinitialisation envoyé à %s", email)
	}
}

func sendResetEmail(email, name, link string) error {
	msg := mail.NewMsg()

	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(email); err != nil {
		return err
	}
	msg.Subject("Réinitialisation de votre mot de passe")
	msg.SetBodyString(mail.TypeTextHTML, resetEmailHTML(name, link))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", email)
	return client.DialAndSend(msg)
}

func resetEmailHTML(name, link string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Réinitialisation de mot de passe</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Réinitialisation de votre mot de passe</h2>
		<p>Bonjour <b>%s</b>,</p>
		<p>Vous avez demandé à réinitialiser votre mot de passe.</p>

		<p style="text-align: center; margin: 30px 0;">
			<a href="%s" style="background-color: #007bff; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Réinitialiser mon mot de passe</a>
		</p>

		<p style="font-size: 14px; color: #888; border-left: 3px solid #ffa500; padding-left: 15px; margin-top: 20px;">
			<strong>⚠️ Attention :</strong> Ce lien est valable pendant 1 heure seulement.
		</p>

		<p style="font-size: 14px; color: #888; margin-top: 20px;">
			Si vous n'avez pas demandé cette réinitialisation, ignorez simplement cet email.
		</p>
	</div>
</body>
</html>
	`, name, link)
}
