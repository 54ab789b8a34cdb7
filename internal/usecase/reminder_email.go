package usecase

import (
	"fmt"
	"os"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"
)

// Email composition for reminder notifications. The HTML mirrors the fixed
// template delivered to recipients: greeting, client card with note and
// phone, and a link back to the client detail view.

const defaultEmailFrom = "CRM Senior <onboarding@resend.dev>"

func reminderEmailFrom() string {
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		return v
	}
	return defaultEmailFrom
}

func appURL() string {
	return os.Getenv("APP_URL")
}

func displayName(user entities.User) string {
	if user.Name != "" {
		return user.Name
	}
	return "Usuario"
}

func buildReminderEmail(user entities.User, client entities.Client, note string) interfaces.EmailMessage {
	html := fmt.Sprintf(`
<h1>Recordatorio de Seguimiento</h1>
<p>Hola %s,</p>
<p>Tienes un recordatorio pendiente para hoy:</p>
<div style="border: 1px solid #ccc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2>%s</h2>
    <p><strong>Nota:</strong> %s</p>
    <p><strong>Teléfono:</strong> %s</p>
    <br/>
    <a href="%s/dashboard/clients/%s" style="background-color: #000; color: #fff; padding: 10px 20px; text-decoration: none; border-radius: 5px;">
        Ver Cliente
    </a>
</div>`, displayName(user), client.Name, note, client.Phone, appURL(), client.ID)

	return interfaces.EmailMessage{
		From:     reminderEmailFrom(),
		To:       user.Email,
		Subject:  "🔔 Recordatorio: " + client.Name,
		HTMLBody: html,
	}
}

func buildTestReminderEmail(user entities.User, client entities.Client) interfaces.EmailMessage {
	phone := client.Phone
	if phone == "" {
		phone = "--"
	}
	email := client.Email
	if email == "" {
		email = "--"
	}
	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h1 style="color: #333; font-size: 24px;">Recordatorio de Seguimiento (PRUEBA)</h1>
    <p style="font-size: 16px; color: #555;">Hola %s,</p>
    <p style="font-size: 16px; color: #555;">Este es un <strong>correo de prueba</strong> para verificar el formato de los recordatorios.</p>
    <div style="border: 2px solid #e5e7eb; padding: 20px; border-radius: 12px; margin: 20px 0; background-color: #f9fafb;">
        <h2 style="color: #111; margin-top: 0;">%s</h2>
        <p style="font-size: 16px; margin-bottom: 5px;"><strong>Nota / Actividad:</strong></p>
        <p style="font-size: 18px; color: #333; background-color: #fff; padding: 10px; border-radius: 6px; border: 1px solid #eee;">
            Esto es una nota de prueba simulando un recordatorio pendiente.
        </p>
        <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
            <p style="font-size: 14px; color: #666;">
                <strong>Teléfono:</strong> %s<br>
                <strong>Email:</strong> %s
            </p>
        </div>
    </div>
    <div style="text-align: center; margin-top: 30px;">
        <a href="%s/dashboard/clients/%s"
           style="background-color: #000; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-weight: bold; font-size: 16px; display: inline-block;">
            Ver Ficha del Cliente
        </a>
    </div>
</div>`, displayName(user), client.Name, phone, email, appURL(), client.ID)

	return interfaces.EmailMessage{
		From:     reminderEmailFrom(),
		To:       user.Email,
		Subject:  "[PRUEBA] 🔔 Recordatorio: " + client.Name,
		HTMLBody: html,
	}
}
