package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const homePage = `<!DOCTYPE html>
<html>
<head><title>Trimly — Barbershop Booking</title></head>
<body>
  <h1>Trimly</h1>
  <p>Chat with the booking agent:</p>
  <div id="log" style="white-space:pre-wrap;border:1px solid #ccc;padding:1em;min-height:8em;"></div>
  <input id="msg" size="60" placeholder="e.g. book a haircut for Anna on 2025-09-13 at 11:00">
  <button onclick="send()">Send</button>
  <script>
    async function send() {
      const msg = document.getElementById('msg').value;
      const res = await fetch('/api/chat', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({session_id: 'web', message: msg})
      });
      const data = await res.json();
      document.getElementById('log').textContent +=
        'you: ' + msg + '\n' + 'agent: ' + data.reply + '\n';
      document.getElementById('msg').value = '';
    }
    if (new URLSearchParams(location.search).get('payment') === 'success') {
      document.getElementById('log').textContent = 'Payment received — see you soon!\n';
    }
  </script>
</body>
</html>`

// Home serves the minimal chat page.
func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}
